package dashboard

import (
	"github.com/nfrund/ecoshare/internal/dashboard"
	"github.com/nfrund/ecoshare/internal/domain"
	"github.com/nfrund/ecoshare/internal/view/dto/auth"
)

// Data is the View Model for the dashboard page and its tile grid fragment.
type Data struct {
	Tiles []domain.DashboardTile
	Hover dashboard.HoverState
	// Authenticated controls whether the header offers a logout link.
	Authenticated bool
	// CSRF is sent along with the hover requests.
	CSRF auth.CSRF
}

// NewData builds the view model for the fixed tile list.
func NewData(hover dashboard.HoverState, authenticated bool, csrf auth.CSRF) Data {
	return Data{
		Tiles:         domain.Tiles(),
		Hover:         hover,
		Authenticated: authenticated,
		CSRF:          csrf,
	}
}
