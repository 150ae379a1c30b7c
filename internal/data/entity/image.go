package entity

// Image holds whichever payload the document carries. HasData and HasEncoded
// record field presence, which decides how the image is resolved.
type Image struct {
	ID          string
	Data        []byte
	HasData     bool
	ContentType string
	Encoded     string
	HasEncoded  bool
}
