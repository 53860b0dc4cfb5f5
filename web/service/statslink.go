package service

import (
	"fmt"
	"strings"
)

const opggBaseURL = "https://www.op.gg/summoners"

// StatsLinkService builds deep links to the OP.GG stats page of a summoner.
// Pure formatting, no network calls.
type StatsLinkService struct{}

func NewStatsLinkService() *StatsLinkService {
	return &StatsLinkService{}
}

// BuildURL returns the stats page URL for the given summoner name and region.
// Riot ids carry a "#" tag separator which OP.GG expects as "-", and spaces
// are stripped. Returns an empty string when name or region is missing.
func (s *StatsLinkService) BuildURL(name string, region string) string {
	if name == "" || region == "" {
		return ""
	}
	cleaned := strings.ReplaceAll(name, "#", "-")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	return fmt.Sprintf("%s/%s/%s", opggBaseURL, region, cleaned)
}
