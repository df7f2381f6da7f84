package models

// Static marketing catalog: the package, add-ons, occasions, time slots and
// themes shown on the landing page and accepted by the booking form.

const (
	WhatsAppNumber  = "27737157352"
	WhatsAppBaseURL = "https://wa.me/" + WhatsAppNumber

	// Base price of the luxury picnic experience, in rand.
	BasePrice = 1200.0
)

type AddOn struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	PriceLabel string  `json:"price_label,omitempty"`
}

// AddOns with Price 0 carry a PriceLabel instead and are excluded from the
// arithmetic total.
var AddOns = []AddOn{
	{ID: "grazing", Name: "Grazing box (food)", Price: 350},
	{ID: "snack", Name: "Snack platter", Price: 250},
	{ID: "fruit", Name: "Fruit platter", Price: 150},
	{ID: "drinks", Name: "Additional drinks", Price: 0, PriceLabel: "Price depends on selection"},
}

// FindAddOn returns the catalog add-on for id, or nil for unknown ids.
func FindAddOn(id string) *AddOn {
	for i := range AddOns {
		if AddOns[i].ID == id {
			return &AddOns[i]
		}
	}
	return nil
}

var Occasions = []string{
	"Proposal",
	"Anniversary",
	"Birthday",
	"Date Night",
	"Celebration",
	"Other",
}

var TimeSlots = []string{
	"Morning (9:00 AM)",
	"Midday (12:00 PM)",
	"Afternoon (3:00 PM)",
	"Sunset (5:00 PM)",
	"Evening (7:00 PM)",
}

var PackageFeatures = []string{
	"Full setup & clearing up",
	"Table, chairs & luxury decor",
	"Glasses, trays, plates & cutlery",
	"Ice bucket & drinks trolley",
	"Fresh flowers",
	"Complimentary drinks (wine, champagne, juice, cocktails or specialty tea)",
	"Games & entertainment",
	"Board games: chess, monopoly, ludo, scrabble",
	"Cards: intimacy cards, risk it or drink it, truth or dare",
}

type Theme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var Themes = []Theme{
	{
		ID:          "classic-romance",
		Name:        "Classic Romance",
		Description: "Elegant white linens, rose petals, and champagne for intimate proposals and anniversaries.",
	},
	{
		ID:          "garden-elegance",
		Name:        "Garden Elegance",
		Description: "Lush greenery, natural wood accents, and botanical touches for nature lovers.",
	},
	{
		ID:          "celebration-luxe",
		Name:        "Celebration Luxe",
		Description: "Bold colors, premium decor, and festive touches for birthdays and special milestones.",
	},
}

// Guest count bounds for the booking form.
const (
	MinGuests     = 2
	MaxGuests     = 10
	DefaultGuests = 2
)
