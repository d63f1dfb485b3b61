package fixture

// fileDTO is the on-disk fixture layout.
type fileDTO struct {
	Documents []documentDTO `yaml:"documents"`
	Queries   []queryDTO    `yaml:"queries"`
}

type authorDTO struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type documentDTO struct {
	ID      string     `yaml:"id"`
	Title   string     `yaml:"title"`
	Content string     `yaml:"content"`
	Author  *authorDTO `yaml:"author"`
	Created string     `yaml:"created"`
}

// queryDTO keeps list fields as plain slices: an absent or null key decodes
// to nil, an explicit [] decodes to an empty slice.
type queryDTO struct {
	Name             string   `yaml:"name"`
	TitlePrefixes    []string `yaml:"title_prefixes"`
	ContainsContents []string `yaml:"contains_contents"`
	AuthorIDs        []string `yaml:"author_ids"`
	CreatedFrom      string   `yaml:"created_from"`
	CreatedTo        string   `yaml:"created_to"`
}
