// internal/catalog/domain.go
package catalog

// Book represents a single title in the catalog, identified by ISBN.
type Book struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	ISBN      string `json:"isbn"`
	Available bool   `json:"available"`
}
