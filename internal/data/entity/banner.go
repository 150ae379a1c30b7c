package entity

// Banner is a promotional banner in the commerce store. Like Crop and Image it
// is mapped by hand from loosely typed documents, so it carries no bson tags.
type Banner struct {
	ID        string
	Title     string
	ImageURL  string
	TargetURL string
	IsActive  bool
}
