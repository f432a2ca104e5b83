package entity

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestOrderJSONCarriesPreloadedUserAndRestaurant(t *testing.T) {
	o := Order{
		User: &User{
			Name:     "Alice",
			Email:    "alice@test.com",
			Password: "bcrypt-hash",
			ResetOTP: "123456",
		},
		Restaurant: &Restaurant{Name: "Pizza Paradise", Image: "pizza.jpg"},
	}

	b, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(b)

	for _, want := range []string{"Alice", "alice@test.com", "Pizza Paradise", "pizza.jpg"} {
		if !strings.Contains(out, want) {
			t.Errorf("order JSON missing %q: %s", want, out)
		}
	}
	for _, leak := range []string{"bcrypt-hash", "123456"} {
		if strings.Contains(out, leak) {
			t.Errorf("order JSON leaks %q", leak)
		}
	}
}

func TestOrderJSONOmitsUnloadedAssociations(t *testing.T) {
	b, err := json.Marshal(Order{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(b)

	if strings.Contains(out, `"user"`) {
		t.Errorf("empty user serialized: %s", out)
	}
	if strings.Contains(out, `"restaurant"`) {
		t.Errorf("empty restaurant serialized: %s", out)
	}
}
