// One-off: go run scripts/seed.go [api-base]
// Posts a few demo events and items against a running instance.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

func main() {
	base := "http://localhost:8080/api/v1"
	if len(os.Args) > 1 {
		base = os.Args[1]
	}

	events := []map[string]any{
		{"name": "Gym", "recurrence": map[string]any{"kind": "weekly", "days_of_week": []string{"MO", "WE", "FR"}}},
		{"name": "Vitamins", "recurrence": map[string]any{"kind": "daily"}},
		{"name": "Weekend trip", "date": "2026-09-12", "recurrence": map[string]any{"kind": "none"}},
	}
	items := map[string][]string{
		"Gym":          {"Towel", "Water bottle"},
		"Weekend trip": {"Charger", "Passport", "Camera"},
	}

	for _, ev := range events {
		id, err := post(base+"/events", ev)
		if err != nil {
			panic(err)
		}
		name := ev["name"].(string)
		fmt.Printf("event %q -> id %d\n", name, id)
		for _, it := range items[name] {
			if _, err := post(fmt.Sprintf("%s/events/%d/items", base, id), map[string]any{"name": it}); err != nil {
				panic(err)
			}
		}
	}
}

func post(url string, body map[string]any) (int64, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("%s: %s", url, resp.Status)
	}
	var out struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.ID, nil
}
