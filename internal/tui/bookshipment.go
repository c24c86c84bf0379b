package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raith/agroconnect/internal/nav"
	"github.com/raith/agroconnect/internal/shipments"
)

var bookingFields = []string{
	"product", "pickup address", "dropoff address", "pickup city",
	"dropoff city", "quantity", "weight (kg)", "date (YYYY-MM-DD)", "time (HH:MM)",
}

type bookingForm struct {
	inputs   []textinput.Model
	vehicle  int
	provider int
	focus    int
}

func newBookingForm() bookingForm {
	inputs := make([]textinput.Model, len(bookingFields))
	for i, field := range bookingFields {
		in := textinput.New()
		in.Placeholder = field
		in.CharLimit = 120
		inputs[i] = in
	}
	inputs[0].Focus()
	return bookingForm{inputs: inputs}
}

func (f *bookingForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.vehicle = 0
	f.provider = 0
	f.focus = 0
	f.inputs[0].Focus()
}

func (f *bookingForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (a *App) handleBookingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &a.booking
	switch msg.String() {
	case "esc":
		a.register.RequestTransition(nav.PageSupplyChain, "", false)
		return a, nil
	case "tab", "down":
		f.setFocus((f.focus + 1) % len(f.inputs))
		return a, nil
	case "shift+tab", "up":
		f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
		return a, nil
	case "ctrl+v":
		f.vehicle = (f.vehicle + 1) % len(shipments.VehicleTypes())
		return a, nil
	case "ctrl+p":
		f.provider = (f.provider + 1) % len(shipments.Providers())
		return a, nil
	case "enter":
		if f.focus < len(f.inputs)-1 {
			f.setFocus(f.focus + 1)
			return a, nil
		}
		return a.submitBooking()
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return a, cmd
}

func (a *App) submitBooking() (tea.Model, tea.Cmd) {
	f := &a.booking
	for i := range f.inputs {
		if strings.TrimSpace(f.inputs[i].Value()) == "" {
			a.setStatus(bookingFields[i] + " is required")
			a.statusErr = true
			f.setFocus(i)
			return a, nil
		}
	}
	provider := shipments.Providers()[f.provider]
	tracking := a.book.Add(shipments.Booking{
		Product:        strings.TrimSpace(f.inputs[0].Value()),
		PickupAddress:  strings.TrimSpace(f.inputs[1].Value()),
		DropoffAddress: strings.TrimSpace(f.inputs[2].Value()),
		PickupCity:     strings.TrimSpace(f.inputs[3].Value()),
		DropoffCity:    strings.TrimSpace(f.inputs[4].Value()),
		Quantity:       strings.TrimSpace(f.inputs[5].Value()),
		Weight:         strings.TrimSpace(f.inputs[6].Value()),
		VehicleType:    shipments.VehicleTypes()[f.vehicle],
		ScheduledDate:  strings.TrimSpace(f.inputs[7].Value()),
		ScheduledTime:  strings.TrimSpace(f.inputs[8].Value()),
		ProviderID:     provider.ID,
		ProviderName:   provider.Name,
		Amount:         provider.Rate,
	})
	// Navigate first: the transition clears the status line.
	a.register.RequestTransition(nav.PageSupplyChain, "", false)
	a.setStatus("shipment booked, tracking number " + tracking)
	return a, nil
}

func (a *App) viewBookShipment() string {
	f := &a.booking
	var b strings.Builder
	b.WriteString(titleStyle.Render("Book shipment"))
	b.WriteString("\n\n")
	for i := range f.inputs {
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	provider := shipments.Providers()[f.provider]
	b.WriteString("\nvehicle:  " + selectedStyle.Render(shipments.VehicleTypes()[f.vehicle]))
	b.WriteString(fmt.Sprintf("\nprovider: %s (%.1f★, %s, %s%.0f)",
		selectedStyle.Render(provider.Name), provider.Rating, provider.Capacity,
		a.cfg.UI.CurrencySymbol, provider.Rate))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("enter next/submit · ctrl+v vehicle · ctrl+p provider · esc cancel"))
	return b.String()
}
