package model

// LinkRecord represents a shortened link as known locally. Once created it
// is never mutated; the store only ever appends new records.
type LinkRecord struct {
	ID           string
	OriginalURL  string
	ShortenedURL string
}

// AliasRequest is the body of a create request sent to the alias API.
type AliasRequest struct {
	URL string `json:"url"`
}

// AliasLinks holds the link pair the service returns for an alias.
type AliasLinks struct {
	Self  string `json:"self"`
	Short string `json:"short"`
}

// AliasResponse is the wire shape returned by both the create and the
// lookup operations of the alias API.
type AliasResponse struct {
	Alias string     `json:"alias"`
	Links AliasLinks `json:"_links"`
}

// Record maps the wire shape into a LinkRecord.
func (r *AliasResponse) Record() LinkRecord {
	return LinkRecord{
		ID:           r.Alias,
		OriginalURL:  r.Links.Self,
		ShortenedURL: r.Links.Short,
	}
}
