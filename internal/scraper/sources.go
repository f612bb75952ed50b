package scraper

import "fmt"

// Network is one SSRN announcement network, identified by its annsNet id.
type Network struct {
	Name string
	ID   int
}

// Networks is the source catalog: the three SSRN networks the tracker
// follows.
var Networks = []Network{
	{Name: "Finance", ID: 203},    // FEN
	{Name: "Accounting", ID: 204}, // ARN
	{Name: "Economics", ID: 205},  // ERN
}

// URL returns the listing-page locator for the network.
func (n Network) URL() string {
	return fmt.Sprintf("https://www.ssrn.com/index.cfm/en/janda/professional-announcements/?annsNet=%d", n.ID)
}

// conferenceSections are the listing-page headings whose items are calls for
// conference papers or participants.
var conferenceSections = []string{
	"Call for Papers & Participants - Conference",
	"Call for Participants - Conference",
	"Call for Papers - Competitions",
}
