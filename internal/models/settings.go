package models

// UserSettings is the profile/settings entry, independent of the record list.
type UserSettings struct {
	Name          string  `json:"name"`
	DarkMode      bool    `json:"darkMode"`
	Currency      string  `json:"currency"`
	RiskPerTrade  float64 `json:"riskPerTrade"`
	AccountSize   float64 `json:"accountSize"`
	ShowPnLInHome bool    `json:"showPnLInHome"`
}

// DefaultSettings returns the settings written on first read.
func DefaultSettings() UserSettings {
	return UserSettings{
		Name:          "Trader",
		DarkMode:      true,
		Currency:      "USD",
		RiskPerTrade:  2,
		AccountSize:   10000,
		ShowPnLInHome: true,
	}
}
