package types

// Palette holds the colour tokens shared by the web and mobile clients.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	TextMuted  string `json:"textMuted"`
	Border     string `json:"border"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
}

var DefaultPalette = Palette{
	Primary:    "#6B8E9E",
	Secondary:  "#A3C4BC",
	Accent:     "#E8B4A0",
	Background: "#FAF7F2",
	Surface:    "#FFFFFF",
	Text:       "#2F3A40",
	TextMuted:  "#7A868C",
	Border:     "#E3DED6",
	Success:    "#7FB08A",
	Warning:    "#E6C170",
	Error:      "#D98282",
}

// CategoryColors maps each deposit category to its chip colour.
var CategoryColors = map[DepositCategory]string{
	DepositCategoryGratitude:     "#F2C879",
	DepositCategoryAchievement:   "#7FB08A",
	DepositCategoryMemory:        "#B39DDB",
	DepositCategoryRelationships: "#E8B4A0",
	DepositCategoryHope:          "#8EC5E6",
	DepositCategoryRelease:       "#A3C4BC",
}
