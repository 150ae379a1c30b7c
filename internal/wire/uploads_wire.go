package wire

import (
	"net/http"

	"agro-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// wireUploads serves files from dir under /uploads. Directory listings are disabled.
func wireUploads(r chi.Router, dir string) {
	root := http.Dir(dir)
	fs := http.StripPrefix("/uploads/", http.FileServer(root))

	r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "*")
		if name == "" || !isRegularFile(root, name) {
			utils.ResponseNotFound(w, "File not found")
			return
		}
		fs.ServeHTTP(w, req)
	})
}

func isRegularFile(root http.FileSystem, name string) bool {
	f, err := root.Open("/" + name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
