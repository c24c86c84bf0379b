// Package shipments keeps the client's freight bookings. This state is
// purely local and in-memory: the backend does not record bookings made here,
// so the book is the state of record for the lifetime of the process.
package shipments

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusInTransit Status = "in-transit"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type Shipment struct {
	ID             string
	TrackingNumber string
	Status         Status
	Product        string
	From           string
	To             string
	Date           string
	DeliveredDate  string
	PickupAddress  string
	DropoffAddress string
	PickupCity     string
	DropoffCity    string
	Quantity       string
	Weight         string
	VehicleType    string
	ScheduledDate  string
	ScheduledTime  string
	ProviderID     string
	ProviderName   string
	Amount         float64
}

// Booking is the user-supplied part of a shipment; the book assigns id,
// tracking number, booking date and initial status.
type Booking struct {
	Product        string
	PickupAddress  string
	DropoffAddress string
	PickupCity     string
	DropoffCity    string
	Quantity       string
	Weight         string
	VehicleType    string
	ScheduledDate  string
	ScheduledTime  string
	ProviderID     string
	ProviderName   string
	Amount         float64
}

// Provider is a logistics operator offered during booking. The list is fixed
// reference data; Rate becomes the shipment amount.
type Provider struct {
	ID          string
	Name        string
	Rating      float64
	Capacity    string
	Rate        float64
	VehicleType string
}

func Providers() []Provider {
	return []Provider{
		{ID: "1", Name: "FastTrack Logistics", Rating: 4.5, Capacity: "10 tons", Rate: 5000, VehicleType: "Truck"},
		{ID: "2", Name: "QuickShip Transport", Rating: 4.2, Capacity: "5 tons", Rate: 3500, VehicleType: "Mini Truck"},
		{ID: "3", Name: "MegaHaul Services", Rating: 4.8, Capacity: "20 tons", Rate: 8500, VehicleType: "Heavy Truck"},
	}
}

// VehicleTypes a booking may request, smallest to largest.
func VehicleTypes() []string {
	return []string{"mini-truck", "truck", "heavy-truck"}
}

// Book holds all shipments, newest first.
type Book struct {
	mu        sync.Mutex
	shipments []Shipment
	seq       int
}

// NewBook seeds the book with the reference shipments every fresh client
// starts with.
func NewBook() *Book {
	return &Book{
		seq: 2,
		shipments: []Shipment{
			{
				ID:             "1",
				TrackingNumber: "SCM2024001",
				Status:         StatusInTransit,
				Product:        "Rice - 500kg",
				From:           "Mumbai",
				To:             "Delhi",
				Date:           "2024-01-15",
				PickupAddress:  "Farm House, Village Kheda",
				DropoffAddress: "Warehouse 5, Industrial Area",
				PickupCity:     "Mumbai",
				DropoffCity:    "Delhi",
				Quantity:       "500 bags",
				Weight:         "25000",
				VehicleType:    "truck",
				ScheduledDate:  "2024-01-15",
				ScheduledTime:  "10:00",
				ProviderID:     "1",
				ProviderName:   "FastTrack Logistics",
				Amount:         5000,
			},
			{
				ID:             "2",
				TrackingNumber: "SCM2024002",
				Status:         StatusPending,
				Product:        "Wheat - 1000kg",
				From:           "Pune",
				To:             "Bangalore",
				Date:           "2024-01-16",
				PickupAddress:  "Agricultural Market",
				DropoffAddress: "Distribution Center",
				PickupCity:     "Pune",
				DropoffCity:    "Bangalore",
				Quantity:       "1000 bags",
				Weight:         "50000",
				VehicleType:    "heavy-truck",
				ScheduledDate:  "2024-01-16",
				ScheduledTime:  "14:00",
				ProviderID:     "2",
				ProviderName:   "QuickShip Transport",
				Amount:         3500,
			},
		},
	}
}

// Add books a shipment and returns its tracking number. The new shipment is
// pending, dated today and prepended so listings show newest first.
func (b *Book) Add(in Booking) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	s := Shipment{
		ID:             uuid.NewString(),
		TrackingNumber: fmt.Sprintf("SCM2024%03d", b.seq),
		Status:         StatusPending,
		Product:        in.Product,
		From:           in.PickupCity,
		To:             in.DropoffCity,
		Date:           time.Now().Format("2006-01-02"),
		PickupAddress:  in.PickupAddress,
		DropoffAddress: in.DropoffAddress,
		PickupCity:     in.PickupCity,
		DropoffCity:    in.DropoffCity,
		Quantity:       in.Quantity,
		Weight:         in.Weight,
		VehicleType:    in.VehicleType,
		ScheduledDate:  in.ScheduledDate,
		ScheduledTime:  in.ScheduledTime,
		ProviderID:     in.ProviderID,
		ProviderName:   in.ProviderName,
		Amount:         in.Amount,
	}
	b.shipments = append([]Shipment{s}, b.shipments...)
	return s.TrackingNumber
}

func (b *Book) ByID(id string) (Shipment, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.shipments {
		if s.ID == id {
			return s, true
		}
	}
	return Shipment{}, false
}

func (b *Book) ByTracking(trackingNumber string) (Shipment, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.shipments {
		if s.TrackingNumber == trackingNumber {
			return s, true
		}
	}
	return Shipment{}, false
}

// All returns a copy of the book, newest first.
func (b *Book) All() []Shipment {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Shipment, len(b.shipments))
	copy(out, b.shipments)
	return out
}

// ProviderByID resolves a provider from the fixed list.
func ProviderByID(id string) (Provider, bool) {
	for _, p := range Providers() {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}
