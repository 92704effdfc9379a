package extractor

import (
	"strings"
	"testing"
)

const fullDetailHTML = `<html><body>
<h1 class="DUwDvf">Bright Smile Dental</h1>
<div class="F7nice">
  <span aria-hidden="true">4.7</span>
  <span aria-label="1,234 reviews">(1,234)</span>
</div>
<button class="DkEaL">Dentist</button>
<button data-item-id="address"><div class="fontBodyMedium">100 Congress Ave, Austin, TX 78701</div></button>
<button data-item-id="phone:tel:+15125550147"><div class="fontBodyMedium">(512) 555-0147</div></button>
<a data-item-id="authority" href="https://brightsmile.example"><div class="fontBodyMedium">brightsmile.example</div></a>
<button data-item-id="oh"><div class="fontBodyMedium">Open ⋅ Closes 5 PM</div></button>
<button data-item-id="oloc"><div class="fontBodyMedium">V9G6+FM Austin, Texas</div></button>
<span>contact us at office@brightsmile.example</span>
<a href="https://www.facebook.com/brightsmiledental">fb</a>
</body></html>`

func TestParse_AllFields(t *testing.T) {
	b := Parse(fullDetailHTML)

	if b.Name != "Bright Smile Dental" {
		t.Errorf("name = %q", b.Name)
	}
	if b.Address == nil || *b.Address != "100 Congress Ave, Austin, TX 78701" {
		t.Errorf("address = %v", b.Address)
	}
	if b.Phone == nil || *b.Phone != "(512) 555-0147" {
		t.Errorf("phone = %v", b.Phone)
	}
	if b.Website == nil || *b.Website != "brightsmile.example" {
		t.Errorf("website = %v", b.Website)
	}
	if b.Rating == nil || *b.Rating != 4.7 {
		t.Errorf("rating = %v", b.Rating)
	}
	if b.ReviewCount == nil || *b.ReviewCount != 1234 {
		t.Errorf("review count = %v", b.ReviewCount)
	}
	if b.Category == nil || *b.Category != "Dentist" {
		t.Errorf("category = %v", b.Category)
	}
	if b.Hours == nil || !strings.Contains(*b.Hours, "Closes 5 PM") {
		t.Errorf("hours = %v", b.Hours)
	}
	if b.PlusCode == nil || *b.PlusCode != "V9G6+FM Austin, Texas" {
		t.Errorf("plus code = %v", b.PlusCode)
	}
	if b.Email == nil || *b.Email != "office@brightsmile.example" {
		t.Errorf("email = %v", b.Email)
	}
	if b.Socials["facebook"] != "https://www.facebook.com/brightsmiledental" {
		t.Errorf("socials = %v", b.Socials)
	}
}

func TestParse_SparseListing(t *testing.T) {
	// A listing with nothing but a heading: every optional field stays unset.
	b := Parse(`<html><body><h1>Corner Barber</h1></body></html>`)

	if b.Name != "Corner Barber" {
		t.Errorf("name = %q", b.Name)
	}
	if b.Address != nil || b.Phone != nil || b.Website != nil || b.Rating != nil ||
		b.ReviewCount != nil || b.Category != nil || b.Hours != nil || b.Email != nil {
		t.Errorf("expected all optional fields unset, got %+v", b)
	}
}

func TestParse_NeverFails(t *testing.T) {
	for _, input := range []string{"", "not html at all", "<div><", "<html></html>"} {
		b := Parse(input)
		if !b.LowConfidence() {
			t.Errorf("Parse(%q) produced a name from nothing: %q", input, b.Name)
		}
	}
}

func TestParseRating(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"4.7", 4.7, true},
		{"4,7", 4.7, true},
		{" 5.0 ", 5.0, true},
		{"0", 0, true},
		{"no rating", 0, false},
		{"", 0, false},
		{"7.2", 0, false}, // outside the 0–5 scale
		{"-1", 0, false},
	}
	for _, c := range cases {
		got := ParseRating(c.in)
		if c.ok {
			if got == nil || *got != c.want {
				t.Errorf("ParseRating(%q) = %v, want %v", c.in, got, c.want)
			}
		} else if got != nil {
			t.Errorf("ParseRating(%q) = %v, want unset", c.in, *got)
		}
	}
}

func TestParseReviewCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"(1,234)", 1234, true},
		{"1,234 reviews", 1234, true},
		{"(17)", 17, true},
		{"89", 89, true},
		{"no reviews yet", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got := ParseReviewCount(c.in)
		if c.ok {
			if got == nil || *got != c.want {
				t.Errorf("ParseReviewCount(%q) = %v, want %d", c.in, got, c.want)
			}
		} else if got != nil {
			t.Errorf("ParseReviewCount(%q) = %v, want unset", c.in, *got)
		}
	}
}

func TestFindEmail_FiltersNoise(t *testing.T) {
	content := `<a href="mailto:noreply@google.com">x</a>
	 schema.org/email: meta@schema.org
	 reach us: hello@cornerbarber.example`
	if got := FindEmail(content); got != "hello@cornerbarber.example" {
		t.Errorf("FindEmail = %q", got)
	}

	if got := FindEmail("only noreply@google.com here"); got != "" {
		t.Errorf("expected no email, got %q", got)
	}
}

func TestFindSocials(t *testing.T) {
	content := `visit https://www.instagram.com/cornerbarber and
	 https://x.com/cornerbarber`
	socials := FindSocials(content)
	if socials["instagram"] != "https://www.instagram.com/cornerbarber" {
		t.Errorf("instagram = %q", socials["instagram"])
	}
	if socials["twitter"] != "https://x.com/cornerbarber" {
		t.Errorf("twitter = %q", socials["twitter"])
	}
	if FindSocials("no links here") != nil {
		t.Error("expected nil for content without social links")
	}
}
