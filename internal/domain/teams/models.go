package teams

// Team represents one NBA franchise as known to the stats provider.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
}

// Conference labels as used by the standings result set.
const (
	ConferenceEast = "East"
	ConferenceWest = "West"
)
