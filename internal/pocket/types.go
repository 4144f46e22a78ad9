package pocket

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Item is one saved Pocket item. Pocket sends most numbers as strings.
type Item struct {
	ItemID        string `json:"item_id"`
	GivenURL      string `json:"given_url"`
	GivenTitle    string `json:"given_title"`
	ResolvedURL   string `json:"resolved_url,omitempty"`
	ResolvedTitle string `json:"resolved_title,omitempty"`
	Favorite      string `json:"favorite"`
	Status        string `json:"status"`
	TimeAdded     string `json:"time_added,omitempty"`
}

// ItemList maps item id to item. Pocket encodes an empty list as [] and a
// non-empty one as an object.
type ItemList map[string]Item

// UnmarshalJSON accepts either an object or an empty array
func (l *ItemList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*l = ItemList{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("decode item array: %w", err)
		}
		list := make(ItemList, len(items))
		for _, it := range items {
			list[it.ItemID] = it
		}
		*l = list
		return nil
	}

	m := map[string]Item{}
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return fmt.Errorf("decode item object: %w", err)
	}
	*l = m
	return nil
}

// RetrieveOptions selects a page of items
type RetrieveOptions struct {
	Count    int
	Offset   int
	Favorite bool
}

// RetrieveResponse is the decoded body of /get
type RetrieveResponse struct {
	Status int      `json:"status"`
	List   ItemList `json:"list"`
}

// apiResponse keeps list raw so a missing field can be told apart from an
// empty one
type apiResponse struct {
	Status int             `json:"status"`
	List   json.RawMessage `json:"list"`
}

type retrieveRequest struct {
	ConsumerKey string `json:"consumer_key"`
	AccessToken string `json:"access_token"`
	Count       int    `json:"count,omitempty"`
	Offset      int    `json:"offset,omitempty"`
	Favorite    *int   `json:"favorite,omitempty"`
}

// Picked is the public view of a random item
type Picked struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
