package api

import "net/http"

// Client is the general interface for the AssetGrid API. It does little more
// than expose functions for obtaining more specialized clients for different
// areas of concern, like Asset management or billing.
type Client interface {
	// Sessions returns a specialized client for session management.
	Sessions() SessionsClient
	// Assets returns a specialized client for Asset management.
	Assets() AssetsClient
	// Categories returns a specialized client for Category management.
	Categories() CategoriesClient
	// Maintenance returns a specialized client for MaintenanceRecord
	// management.
	Maintenance() MaintenanceClient
	// Users returns a specialized client for User management.
	Users() UsersClient
	// Billing returns a specialized client for subscription and invoice
	// retrieval.
	Billing() BillingClient
	// Privacy returns a specialized client for consent management.
	Privacy() PrivacyClient
}

type client struct {
	sessionsClient    SessionsClient
	assetsClient      AssetsClient
	categoriesClient  CategoriesClient
	maintenanceClient MaintenanceClient
	usersClient       UsersClient
	billingClient     BillingClient
	privacyClient     PrivacyClient
}

// NewClient returns an AssetGrid client. Every specialized client issues its
// requests through the one httpClient provided, so installing a
// session.Transport there gives all of them credentials and silent-refresh
// recovery in one place.
func NewClient(apiAddress string, httpClient *http.Client) Client {
	return &client{
		sessionsClient:    NewSessionsClient(apiAddress, httpClient),
		assetsClient:      NewAssetsClient(apiAddress, httpClient),
		categoriesClient:  NewCategoriesClient(apiAddress, httpClient),
		maintenanceClient: NewMaintenanceClient(apiAddress, httpClient),
		usersClient:       NewUsersClient(apiAddress, httpClient),
		billingClient:     NewBillingClient(apiAddress, httpClient),
		privacyClient:     NewPrivacyClient(apiAddress, httpClient),
	}
}

func (c *client) Sessions() SessionsClient {
	return c.sessionsClient
}

func (c *client) Assets() AssetsClient {
	return c.assetsClient
}

func (c *client) Categories() CategoriesClient {
	return c.categoriesClient
}

func (c *client) Maintenance() MaintenanceClient {
	return c.maintenanceClient
}

func (c *client) Users() UsersClient {
	return c.usersClient
}

func (c *client) Billing() BillingClient {
	return c.billingClient
}

func (c *client) Privacy() PrivacyClient {
	return c.privacyClient
}
