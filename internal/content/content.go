// Package content holds the static marketing copy the landing page renders.
// It is data, not behavior: the templates iterate these values and the tab
// state machines select among their keys.
package content

// CardType is one tab of the "All Your Cards in One Place" section.
type CardType struct {
	ID          string
	Title       string
	Description string
	Features    []string
	Image       string
}

// CardTypes in display order; the first tab is initially active.
var CardTypes = []CardType{
	{
		ID:          "payment",
		Title:       "Payment Cards",
		Description: "Securely store and use your credit, debit, and prepaid cards for contactless payments, online purchases, and in-store transactions.",
		Features:    []string{"Tokenized payment security", "Instant payment notifications", "Spending analytics", "Multiple currency support"},
		Image:       "/static/img/payment-cards.png",
	},
	{
		ID:          "business",
		Title:       "Business Cards",
		Description: "Manage corporate expenses, track business spending, and simplify expense reporting with dedicated business cards.",
		Features:    []string{"Receipt capture and management", "Expense categorization", "Team spending controls", "Integration with accounting software"},
		Image:       "/static/img/business-cards.png",
	},
	{
		ID:          "loyalty",
		Title:       "Loyalty Cards",
		Description: "Store all your loyalty and reward cards in one place. Never miss points or rewards again.",
		Features:    []string{"Automatic points tracking", "Reward notifications", "Membership status display", "Digital stamp cards"},
		Image:       "/static/img/loyalty-cards.png",
	},
	{
		ID:          "membership",
		Title:       "Membership Cards",
		Description: "Keep all your club, gym, and association memberships organized in your digital wallet for easy access.",
		Features:    []string{"Membership status tracking", "Renewal reminders", "Digital verification", "Membership benefits display"},
		Image:       "/static/img/membership-cards.png",
	},
	{
		ID:          "id",
		Title:       "ID Cards",
		Description: "Securely store digital versions of your identification cards with selective information sharing capabilities.",
		Features:    []string{"Government ID storage", "Privacy controls", "Biometric verification", "Selective information sharing"},
		Image:       "/static/img/id-cards.png",
	},
	{
		ID:          "event",
		Title:       "Event Cards",
		Description: "Store tickets for concerts, sports events, movies, and other occasions digitally with easy access when needed.",
		Features:    []string{"QR code tickets", "Event reminders", "Venue directions", "Ticket sharing options"},
		Image:       "/static/img/event-cards.png",
	},
	{
		ID:          "access",
		Title:       "Access Cards",
		Description: "Digital keys for your home, office, hotel rooms, and secure locations - all accessible from your phone.",
		Features:    []string{"Secure digital access keys", "Temporary access sharing", "Access history log", "Remote access management"},
		Image:       "/static/img/access-cards.png",
	},
}

// BusinessTool is one tab of the business section.
type BusinessTool struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Features    []string
}

var BusinessTools = []BusinessTool{
	{
		ID:          "expense",
		Name:        "Expense Management",
		Icon:        "💳",
		Description: "Comprehensive corporate card and expense management system for businesses of all sizes",
		Features: []string{
			"Issue virtual and physical cards to employees",
			"Set spending limits and category restrictions",
			"Real-time transaction tracking and approvals",
			"Automated receipt capture and matching",
		},
	},
	{
		ID:          "store",
		Name:        "Store Cards",
		Icon:        "🏬",
		Description: "Create branded store cards that your customers can add to their WaoCard wallet",
		Features: []string{
			"Customizable branded card design",
			"In-store and online payment options",
			"Integrated promotional campaigns",
			"Customer spending analytics dashboard",
		},
	},
	{
		ID:          "gift",
		Name:        "Gift Cards",
		Icon:        "🎁",
		Description: "Digital gift card solution that simplifies giving and receiving",
		Features: []string{
			"Customizable gift card templates",
			"Scheduled delivery options",
			"Balance tracking and management",
			"Integration with loyalty programs",
		},
	},
	{
		ID:          "loyalty",
		Name:        "Loyalty Programs",
		Icon:        "⭐",
		Description: "Build customer relationships with a powerful digital loyalty program",
		Features: []string{
			"Points-based or tiered reward systems",
			"Automated loyalty tracking",
			"Personalized customer offers",
			"Program performance analytics",
		},
	},
}

// Benefit is a business-section highlight card.
type Benefit struct {
	Icon        string
	Title       string
	Description string
}

var Benefits = []Benefit{
	{Icon: "💼", Title: "Business Card Management", Description: "Issue and control corporate cards for your employees with spending limits and restrictions."},
	{Icon: "📊", Title: "Expense Tracking", Description: "Automated expense categorization and reporting for simpler accounting and reconciliation."},
	{Icon: "🏪", Title: "Merchant Services", Description: "Accept WaoCard payments in your business with low transaction fees and fast settlement."},
	{Icon: "🔒", Title: "Secure Transactions", Description: "Enterprise-grade security with fraud protection and real-time transaction monitoring."},
}

// Feature is a landing-page feature card.
type Feature struct {
	Title       string
	Description string
}

var Features = []Feature{
	{Title: "Digital Wallet Management", Description: "Securely store payment cards, loyalty cards, and digital tickets in one place, with quick access to your most used cards."},
	{Title: "Contactless & QR Payments", Description: "Make quick payments using NFC or QR codes, with offline transaction capability for areas with limited connectivity."},
	{Title: "Peer-to-Peer Transfers", Description: "Send money directly to friends and family via phone number, username, or QR code in multiple currencies."},
	{Title: "Mobile Money Integration", Description: "Direct integration with popular mobile money services like M-Pesa, Orange Money, and MTN Mobile Money."},
	{Title: "Digital ID Management", Description: "Secure storage for digital versions of identification documents with selective information sharing."},
	{Title: "Transaction History", Description: "Comprehensive record of all financial activities with searchable and filterable transaction list."},
}

// Step is one "How It Works" onboarding step.
type Step struct {
	Number      int
	Title       string
	Description string
}

var Steps = []Step{
	{Number: 1, Title: "Download", Description: "Download the WaoCard app from your app store and install it on your device."},
	{Number: 2, Title: "Register", Description: "Create your account with just your phone number and set up your secure PIN."},
	{Number: 3, Title: "Add Cards", Description: "Add your payment cards, loyalty cards, tickets, and digital IDs to your wallet."},
	{Number: 4, Title: "Start Using", Description: "Make payments, access locations, store tickets, and manage your digital life."},
}

// Market is a country WaoCard serves or is expanding to.
type Market struct {
	Code string
	Flag string
	Name string
}

var PrimaryMarkets = []Market{
	{Code: "NG", Flag: "🇳🇬", Name: "Nigeria"},
	{Code: "KE", Flag: "🇰🇪", Name: "Kenya"},
	{Code: "GH", Flag: "🇬🇭", Name: "Ghana"},
	{Code: "ZA", Flag: "🇿🇦", Name: "South Africa"},
}

var UpcomingMarkets = []Market{
	{Code: "EG", Flag: "🇪🇬", Name: "Egypt"},
	{Code: "UG", Flag: "🇺🇬", Name: "Uganda"},
	{Code: "TZ", Flag: "🇹🇿", Name: "Tanzania"},
	{Code: "RW", Flag: "🇷🇼", Name: "Rwanda"},
	{Code: "CI", Flag: "🇨🇮", Name: "Côte d'Ivoire"},
	{Code: "SN", Flag: "🇸🇳", Name: "Senegal"},
}

// Testimonial is one slide of the home-page carousel.
type Testimonial struct {
	Quote    string
	Author   string
	Position string
	Location string
	Avatar   string
}

var Testimonials = []Testimonial{
	{
		Quote:    "WaoCard has completely changed how I manage my finances. I no longer carry multiple cards - everything is in one secure app!",
		Author:   "Ade Johnson",
		Position: "Business Owner",
		Location: "Lagos, Nigeria",
		Avatar:   "/static/img/testimonial-1.png",
	},
	{
		Quote:    "The offline functionality is a game-changer. I can still make payments even when network connectivity is poor in my area.",
		Author:   "Faith Mwangi",
		Position: "Teacher",
		Location: "Nairobi, Kenya",
		Avatar:   "/static/img/testimonial-2.png",
	},
	{
		Quote:    "As a business owner, WaoCard has simplified how I track expenses and accept payments. The business dashboard is incredibly useful.",
		Author:   "Samuel Osei",
		Position: "Restaurant Owner",
		Location: "Accra, Ghana",
		Avatar:   "/static/img/testimonial-3.png",
	},
	{
		Quote:    "Being able to store my digital IDs alongside my payment cards makes WaoCard essential for daily life in South Africa.",
		Author:   "Thandi Nkosi",
		Position: "IT Professional",
		Location: "Johannesburg, South Africa",
		Avatar:   "/static/img/testimonial-4.png",
	},
}

// Category is an event directory filter option.
type Category struct {
	ID   string
	Name string
}

var Categories = []Category{
	{ID: "all", Name: "All Events"},
	{ID: "concerts", Name: "Concerts"},
	{ID: "workshops", Name: "Workshops"},
	{ID: "conferences", Name: "Conferences"},
	{ID: "sports", Name: "Sports"},
	{ID: "networking", Name: "Networking"},
}

// CardTypeIDs returns the tab key set of the card-type section.
func CardTypeIDs() []string {
	ids := make([]string, len(CardTypes))
	for i, c := range CardTypes {
		ids[i] = c.ID
	}
	return ids
}

// BusinessToolIDs returns the tab key set of the business section.
func BusinessToolIDs() []string {
	ids := make([]string, len(BusinessTools))
	for i, t := range BusinessTools {
		ids[i] = t.ID
	}
	return ids
}

// CategoryIDs returns the event category filter keys.
func CategoryIDs() []string {
	ids := make([]string, len(Categories))
	for i, c := range Categories {
		ids[i] = c.ID
	}
	return ids
}
