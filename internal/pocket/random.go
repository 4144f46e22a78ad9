package pocket

import (
	"context"
	"errors"
	"math/rand"
	"sort"
)

// ErrNoItems is returned when there is nothing to pick from
var ErrNoItems = errors.New("no items to pick from")

// PickRandom picks one item using intn, which must return a value in [0, n).
// Items are ordered by id first so a given intn is reproducible.
func PickRandom(items ItemList, intn func(int) int) (Picked, error) {
	if len(items) == 0 {
		return Picked{}, ErrNoItems
	}

	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	item := items[ids[intn(len(ids))]]
	return Picked{Title: item.GivenTitle, URL: item.GivenURL}, nil
}

// Picker returns a random favorite on each call
type Picker struct {
	Client *Client
	Intn   func(int) int
}

// NewPicker creates a Picker using math/rand
func NewPicker(client *Client) *Picker {
	return &Picker{Client: client, Intn: rand.Intn}
}

// Random fetches every favorite and picks one
func (p *Picker) Random(ctx context.Context) (Picked, error) {
	items, err := p.Client.FetchAllFavorites(ctx)
	if err != nil {
		return Picked{}, err
	}
	return PickRandom(items, p.Intn)
}
