package types

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matst80/craft-finder/pkg/common/jsoncompat"
)

type Urgency string

const (
	UrgencyHigh   Urgency = "High"
	UrgencyMedium Urgency = "Medium"
	UrgencyLow    Urgency = "Low"
	UrgencyNone   Urgency = "None"
)

func (u Urgency) IsKnown() bool {
	switch u {
	case UrgencyHigh, UrgencyMedium, UrgencyLow, UrgencyNone:
		return true
	}
	return false
}

type Organiser struct {
	Name     string `json:"name"`
	Url      string `json:"url"`
	Location string `json:"location"`
}

type Pattern struct {
	Text string `json:"text"`
	Url  string `json:"url"`
}

type Material struct {
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

// StringList is a one-or-many text field. It decodes from either a single
// JSON string or an array of strings.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}
	switch data[0] {
	case '"':
		var single string
		if err := jsoncompat.Unmarshal(data, &single); err != nil {
			return err
		}
		if single == "" {
			*s = StringList{}
		} else {
			*s = StringList{single}
		}
		return nil
	case '[':
		var list []string
		if err := jsoncompat.Unmarshal(data, &list); err != nil {
			return err
		}
		*s = list
		return nil
	}
	return fmt.Errorf("string list: unexpected json %q", data)
}

type Project struct {
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Organiser            Organiser  `json:"organiser"`
	Category             string     `json:"category"`
	Craft                StringList `json:"craft"`
	Equipment            StringList `json:"equipment"`
	Materials            []Material `json:"materials"`
	ApproximateTime      string     `json:"approximateTime"`
	Need                 Urgency    `json:"need,omitempty"`
	Community            string     `json:"community,omitempty"`
	Pattern              Pattern    `json:"pattern"`
	LastUpdated          string     `json:"lastUpdated,omitempty"`
	Deadline             string     `json:"deadline,omitempty"`
	Image                string     `json:"image,omitempty"`
	DonationInstructions string     `json:"donationInstructions,omitempty"`
}

// MaterialTypes returns the type of every material in list order.
func (p *Project) MaterialTypes() []string {
	if len(p.Materials) == 0 {
		return nil
	}
	ret := make([]string, 0, len(p.Materials))
	for _, m := range p.Materials {
		ret = append(ret, m.Type)
	}
	return ret
}

// Key identifies a project across sources: title and organiser name.
func (p *Project) Key() string {
	return fmt.Sprintf("%s|%s", normalizeKeyPart(p.Title), normalizeKeyPart(p.Organiser.Name))
}

func normalizeKeyPart(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
