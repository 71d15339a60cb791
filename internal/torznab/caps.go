package torznab

import "encoding/xml"

// Caps is the Torznab capabilities document. It is static for the
// lifetime of the process and describes what this indexer can do.
type Caps struct {
	XMLName    xml.Name       `xml:"caps"`
	Server     CapsServer     `xml:"server"`
	Limits     CapsLimits     `xml:"limits"`
	Searching  CapsSearching  `xml:"searching"`
	Categories CapsCategories `xml:"categories"`
}

type CapsServer struct {
	Version string `xml:"version,attr"`
	Title   string `xml:"title,attr"`
}

type CapsLimits struct {
	Max     string `xml:"max,attr"`
	Default string `xml:"default,attr"`
}

type CapsSearching struct {
	Search      CapsSearchMode `xml:"search"`
	TVSearch    CapsSearchMode `xml:"tv-search"`
	MovieSearch CapsSearchMode `xml:"movie-search"`
	MusicSearch CapsSearchMode `xml:"music-search"`
	AudioSearch CapsSearchMode `xml:"audio-search"`
	BookSearch  CapsSearchMode `xml:"book-search"`
}

type CapsSearchMode struct {
	Available       string `xml:"available,attr"`
	SupportedParams string `xml:"supportedParams,attr,omitempty"`
}

type CapsCategories struct {
	Categories []CapsCategory `xml:"category"`
}

type CapsCategory struct {
	ID      string       `xml:"id,attr"`
	Name    string       `xml:"name,attr"`
	Subcats []CapsSubcat `xml:"subcat"`
}

type CapsSubcat struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// Capabilities returns the capabilities descriptor for this indexer:
// free-text and TV search over a single TV category.
func Capabilities(indexerName string) Caps {
	return Caps{
		Server: CapsServer{Version: "1.0", Title: indexerName},
		Limits: CapsLimits{Max: "100", Default: "20"},
		Searching: CapsSearching{
			Search:      CapsSearchMode{Available: "yes", SupportedParams: "q"},
			TVSearch:    CapsSearchMode{Available: "yes", SupportedParams: "q,season,ep"},
			MovieSearch: CapsSearchMode{Available: "no"},
			MusicSearch: CapsSearchMode{Available: "no"},
			AudioSearch: CapsSearchMode{Available: "no"},
			BookSearch:  CapsSearchMode{Available: "no"},
		},
		Categories: CapsCategories{
			Categories: []CapsCategory{
				{
					ID:   CategoryTV,
					Name: "TV",
					Subcats: []CapsSubcat{
						{ID: "5030", Name: "TV/SD"},
						{ID: "5040", Name: "TV/HD"},
						{ID: "5045", Name: "TV/UHD"},
						{ID: "5050", Name: "TV/Other"},
					},
				},
			},
		},
	}
}
