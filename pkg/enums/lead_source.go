package enums

import "fmt"

// LeadSource identifies the acquisition channel for a lead.
type LeadSource string

const (
	LeadSourceVK             LeadSource = "vk"
	LeadSourceAvito          LeadSource = "avito"
	LeadSource2GIS           LeadSource = "2gis"
	LeadSourceGoogleAds      LeadSource = "google_ads"
	LeadSourceYandexDirect   LeadSource = "yandex_direct"
	LeadSourceRecommendation LeadSource = "recommendation"
	LeadSourceWebsite        LeadSource = "website"
	LeadSourceOther          LeadSource = "other"
)

var validLeadSources = []LeadSource{
	LeadSourceVK,
	LeadSourceAvito,
	LeadSource2GIS,
	LeadSourceGoogleAds,
	LeadSourceYandexDirect,
	LeadSourceRecommendation,
	LeadSourceWebsite,
	LeadSourceOther,
}

// String implements fmt.Stringer.
func (s LeadSource) String() string {
	return string(s)
}

// IsValid reports whether the value is a known LeadSource.
func (s LeadSource) IsValid() bool {
	for _, candidate := range validLeadSources {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLeadSource converts raw input into a LeadSource.
func ParseLeadSource(value string) (LeadSource, error) {
	for _, candidate := range validLeadSources {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lead source %q", value)
}
