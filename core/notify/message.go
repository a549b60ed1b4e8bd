// Package notify turns ride groups into messages for the participants and
// hands them to a Sender.
package notify

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spaceshare/spaceshare/core/model"
)

// TimeLayout formats participant times in message bodies.
const TimeLayout = "Jan 02, 03:04 PM"

// Message is one email to the members of a group.
type Message struct {
	Kind    model.Kind `json:"kind"`
	Group   int        `json:"group"`
	To      []string   `json:"to"`
	Subject string     `json:"subject"`
	Body    string     `json:"body"`
}

// Options customise the message text.
type Options struct {
	SubjectPrefix string `json:"subject_prefix"`
	Team          string `json:"team"`
}

// DefaultOptions returns the code/astro wording.
func DefaultOptions() Options {
	return Options{SubjectPrefix: "[code/astro]", Team: "The code/astro Team"}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SubjectPrefix == "" {
		o.SubjectPrefix = d.SubjectPrefix
	}
	if o.Team == "" {
		o.Team = d.Team
	}
	return o
}

// Compose builds one message per group of kind using the default wording.
func Compose(ps []model.Participant, kind model.Kind) ([]Message, error) {
	return ComposeWith(ps, kind, DefaultOptions())
}

// ComposeWith builds one message per group of kind, ordered by group id.
// Every participant must carry a group id for kind.
func ComposeWith(ps []model.Participant, kind model.Kind, opts Options) ([]Message, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w, got %d", model.ErrInvalidKind, int(kind))
	}
	opts = opts.withDefaults()

	groups := make(map[int][]model.Participant)
	for _, p := range ps {
		g := p.Group(kind)
		if g == 0 {
			return nil, fmt.Errorf("%w: %q has no %s", model.ErrInvalidArgument, p.Name, kind.GroupColumn())
		}
		groups[g] = append(groups[g], p)
	}
	ids := make([]int, 0, len(groups))
	for g := range groups {
		ids = append(ids, g)
	}
	slices.Sort(ids)

	out := make([]Message, 0, len(ids))
	for _, g := range ids {
		members := groups[g]
		to := make([]string, len(members))
		for i, p := range members {
			to[i] = p.Email
		}
		body := groupBody(members, kind, opts)
		if len(members) == 1 {
			body = singleBody(members[0], kind, opts)
		}
		out = append(out, Message{
			Kind:    kind,
			Group:   g,
			To:      to,
			Subject: fmt.Sprintf("%s Rideshare for your %s", opts.SubjectPrefix, kind),
			Body:    body,
		})
	}
	return out, nil
}

func route(kind model.Kind) (trip, origin string) {
	if kind == model.KindDeparture {
		return "from your hotel to the airport", "hotel"
	}
	return "from the airport to your hotel", "airport"
}

func groupBody(members []model.Participant, kind model.Kind, opts Options) string {
	trip, origin := route(kind)
	var b strings.Builder
	b.WriteString("Dear ")
	for _, p := range members {
		b.WriteString(p.FirstName())
		b.WriteString(", ")
	}
	fmt.Fprintf(&b, "\n\nbased on your planned %s times, we suggest that you share a ride %s.\n", kind, trip)
	fmt.Fprintf(&b, "You have said that you want to leave the %s at the following times:\n", origin)
	for _, p := range members {
		fmt.Fprintf(&b, "\t%s: %s\n", p.Name, p.Time(kind).Format(TimeLayout))
	}
	b.WriteString("\nPlease contact each other and organize a ride together. If you have any questions, please contact us.\n")
	fmt.Fprintf(&b, "\nBest regards,\n    %s\n", opts.Team)
	return b.String()
}

func singleBody(p model.Participant, kind model.Kind, opts Options) string {
	trip, _ := route(kind)
	verb := "arrive"
	if kind == model.KindDeparture {
		verb = "depart"
	}
	return fmt.Sprintf(`Dear %s,
We are writing to you because you have indicated that you would like to share a ride %s.
Unfortunately, we have not been able to find any other participants who %s at the same time.
If you would like to share a ride, please contact us and we will try to find a solution.

Best regards,
    %s
`, p.FirstName(), trip, verb, opts.Team)
}
