package page

const MaxLimit = 100

type Page struct {
	Offset int `query:"offset" default:"0" vd:"$>=0"`
	Limit  int `query:"limit" default:"50" vd:"$>=0"`
}

// Normalize clamps the window; a nil page means the first page.
func (p *Page) Normalize() *Page {
	if p == nil {
		return &Page{Limit: 50}
	}
	n := *p
	if n.Offset < 0 {
		n.Offset = 0
	}
	if n.Limit <= 0 {
		n.Limit = 50
	}
	if n.Limit > MaxLimit {
		n.Limit = MaxLimit
	}
	return &n
}
