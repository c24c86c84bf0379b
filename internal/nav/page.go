package nav

// Page identifies a logical screen of the client. The set is closed: screens
// dispatch on it exhaustively and fall back to the home screen for anything
// they do not route.
type Page int

const (
	PageLogin Page = iota
	PageRegister
	PageForgotPassword
	PageHome
	PageMarketplace
	PageCart
	PageOrders
	PageSupplyChain
	PageBookShipment
	PageTrackShipment
	PageShipmentDetails
	PageShipmentHistory
	PageProductDetail
)

var pageNames = map[Page]string{
	PageLogin:           "login",
	PageRegister:        "register",
	PageForgotPassword:  "forgot-password",
	PageHome:            "home",
	PageMarketplace:     "marketplace",
	PageCart:            "cart",
	PageOrders:          "orders",
	PageSupplyChain:     "supply-chain",
	PageBookShipment:    "book-shipment",
	PageTrackShipment:   "track-shipment",
	PageShipmentDetails: "shipment-details",
	PageShipmentHistory: "shipment-history",
	PageProductDetail:   "product-detail",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return "unknown"
}

// State is the single navigation state of the client. AuxID is an opaque
// identifier attached to the current page (a shipment or product id); it is
// empty unless the most recent transition supplied one.
type State struct {
	Page  Page
	AuxID string
}
