package metadomain

// Campaign is the raw campaign resource from the Graph API campaign list.
type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	Objective       string `json:"objective"`
	SpendCap        string `json:"spend_cap"`
	DailyBudget     string `json:"daily_budget"`
	LifetimeBudget  string `json:"lifetime_budget"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

// Action is one entry of the insights actions array. Values arrive as
// strings and may not parse as integers.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// CampaignInsight is a last-30-days insights snapshot for one campaign. The
// Graph API delivers every numeric field as a string.
type CampaignInsight struct {
	Impressions    string   `json:"impressions"`
	Clicks         string   `json:"clicks"`
	Spend          string   `json:"spend"`
	CTR            string   `json:"ctr"`
	CPC            string   `json:"cpc"`
	CPP            string   `json:"cpp"`
	CPM            string   `json:"cpm"`
	Reach          string   `json:"reach"`
	Frequency      string   `json:"frequency"`
	Actions        []Action `json:"actions"`
	CostPerActions []Action `json:"cost_per_action_type"`
	DateStart      string   `json:"date_start"`
	DateStop       string   `json:"date_stop"`
}
