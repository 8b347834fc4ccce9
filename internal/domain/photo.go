package domain

// Photo is one archived collection photo
type Photo struct {
	Number int
	Path   string
}
