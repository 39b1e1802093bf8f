package etl

import (
	"strings"
	"time"

	"github.com/matst80/craft-finder/pkg/types"
)

const (
	sewForCharityName     = "Sewing for Charity Australia"
	sewForCharityUrl      = "https://sewingforcharity.com/"
	sewForCharityDonation = "Mail to: 38 Bladensburg Drive, Waterford QLD 4133. Deliver to: The Sewing Lair Beenleigh or Moorooka. Please label donations."
)

type sewForCharityItem struct {
	Title  string `json:"title"`
	Colour string `json:"colour"`
	Link   string `json:"link"`
	Image  string `json:"image"`
}

// SewForCharity maps the project list scraped from sewingforcharity.com. The
// colour of an item is its status: red items are closed, green ones are
// wanted and yellow ones slow moving.
type SewForCharity struct {
	Now func() time.Time
}

func NewSewForCharity() *SewForCharity {
	return &SewForCharity{Now: time.Now}
}

func (s *SewForCharity) SourceFile() string {
	return "sewforcharity.json"
}

func colourToNeed(colour string) (types.Urgency, bool) {
	switch strings.ToLower(colour) {
	case "red":
		return "", false
	case "green":
		return types.UrgencyHigh, true
	case "yellow":
		return types.UrgencyLow, true
	}
	return types.UrgencyMedium, true
}

type craftProfile struct {
	craft     types.StringList
	equipment types.StringList
	material  string
}

func profileForTitle(title string) craftProfile {
	switch {
	case strings.Contains(title, "Worry Worms"), strings.Contains(title, "Heart String Hearts"):
		return craftProfile{
			craft:     types.StringList{"Crochet"},
			equipment: types.StringList{"Crochet Hook"},
			material:  "Yarn",
		}
	case strings.Contains(title, "Soft Toys"):
		return craftProfile{
			craft:     types.StringList{"Sewing", "Knitting", "Crochet"},
			equipment: types.StringList{"Sewing Machine", "Knitting Needles", "Crochet Hook"},
			material:  "Fabric/Yarn",
		}
	}
	return craftProfile{
		craft:     types.StringList{"Sewing"},
		equipment: types.StringList{"Sewing Machine"},
		material:  "Fabric",
	}
}

func (s *SewForCharity) Transform(records []RawRecord) ([]types.Project, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	today := now().Format(time.DateOnly)

	ret := make([]types.Project, 0, len(records))
	for _, record := range records {
		var item sewForCharityItem
		if err := record.Decode(&item); err != nil {
			return nil, err
		}
		title := strings.TrimSpace(item.Title)
		if strings.Contains(title, "Savvy Shoppers") {
			continue
		}
		need, ok := colourToNeed(item.Colour)
		if !ok {
			continue
		}
		profile := profileForTitle(title)
		ret = append(ret, types.Project{
			Title:       title,
			Description: title,
			Organiser: types.Organiser{
				Name:     sewForCharityName,
				Url:      sewForCharityUrl,
				Location: "QLD",
			},
			Category:             "Family Services",
			Craft:                profile.craft,
			Equipment:            profile.equipment,
			Materials:            []types.Material{{Type: profile.material, Amount: "See pattern"}},
			ApproximateTime:      "Varies",
			Need:                 need,
			LastUpdated:          today,
			Pattern:              types.Pattern{Text: "Download Project Sheet", Url: item.Link},
			Deadline:             "Ongoing",
			Image:                item.Image,
			DonationInstructions: sewForCharityDonation,
		})
	}
	return ret, nil
}
