package entities

// Book mirrors a row of the books table. ISBN is the primary key and never
// changes after the row is created. String columns are unbounded TEXT.
type Book struct {
	ISBN      string `gorm:"primaryKey" json:"isbn"`
	AmazonURL string `json:"amazon_url"`
	Author    string `json:"author"`
	Language  string `json:"language"`
	Pages     int    `json:"pages"`
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
}

func (Book) TableName() string {
	return "books"
}

// BookPatch is a partial update of a Book. A nil field was not supplied by
// the client and leaves the stored value untouched.
type BookPatch struct {
	AmazonURL *string `json:"amazon_url,omitempty" jsonschema:"format=uri"`
	Author    *string `json:"author,omitempty"`
	Language  *string `json:"language,omitempty"`
	Pages     *int    `json:"pages,omitempty" jsonschema:"minimum=1"`
	Publisher *string `json:"publisher,omitempty"`
	Title     *string `json:"title,omitempty"`
	Year      *int    `json:"year,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (p BookPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// ApplyTo merges the supplied fields into book.
func (p BookPatch) ApplyTo(book *Book) {
	if p.AmazonURL != nil {
		book.AmazonURL = *p.AmazonURL
	}
	if p.Author != nil {
		book.Author = *p.Author
	}
	if p.Language != nil {
		book.Language = *p.Language
	}
	if p.Pages != nil {
		book.Pages = *p.Pages
	}
	if p.Publisher != nil {
		book.Publisher = *p.Publisher
	}
	if p.Title != nil {
		book.Title = *p.Title
	}
	if p.Year != nil {
		book.Year = *p.Year
	}
}

// Columns returns the supplied fields keyed by column name, suitable for
// gorm's Updates.
func (p BookPatch) Columns() map[string]any {
	cols := make(map[string]any)
	if p.AmazonURL != nil {
		cols["amazon_url"] = *p.AmazonURL
	}
	if p.Author != nil {
		cols["author"] = *p.Author
	}
	if p.Language != nil {
		cols["language"] = *p.Language
	}
	if p.Pages != nil {
		cols["pages"] = *p.Pages
	}
	if p.Publisher != nil {
		cols["publisher"] = *p.Publisher
	}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Year != nil {
		cols["year"] = *p.Year
	}
	return cols
}
