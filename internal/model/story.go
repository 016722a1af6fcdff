package model

// Story is one entry in the read-only story catalog.
//
// The catalog is external to this service's core: we never create, update,
// or delete stories — we only look them up by ID and resolve favorite sets
// against them. Whatever extra fields the catalog file carries beyond these
// are dropped on load; the API only ever serves what's modelled here.
type Story struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Region   string `json:"region"`   // province/area the folk tale comes from
	Synopsis string `json:"synopsis"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}
