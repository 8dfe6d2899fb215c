// Package pages registers the storefront's page modules. Each page is a
// static route descriptor: pure Render, optional Init that rebinds page
// state after every navigation.
package pages

import (
	"github.com/charmbracelet/lipgloss"

	"shopfront/internal/catalog"
	"shopfront/internal/routes"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	bodyStyle  = lipgloss.NewStyle()
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// All returns every registered page module. The catalog client is the
// products page's external data collaborator.
func All(client *catalog.Client) []routes.Descriptor {
	return []routes.Descriptor{
		Home(),
		About(),
		Teams(),
		Products(client),
		Contact(),
	}
}

// Home is the landing page and the fallback route.
func Home() routes.Descriptor {
	return routes.Descriptor{
		ID:    "home",
		Label: "Home",
		Order: 1,
		Render: func() string {
			return titleStyle.Render("Welcome to the Home Page") + "\n\n" +
				bodyStyle.Render("Browse the catalog under Products, or sign in from the Account menu.") + "\n" +
				mutedStyle.Render("Everything here lives for this session only.")
		},
	}
}

// About describes the shop.
func About() routes.Descriptor {
	return routes.Descriptor{
		ID:    "about",
		Label: "About",
		Order: 2,
		Render: func() string {
			return titleStyle.Render("About") + "\n\n" +
				bodyStyle.Render("A small shop with a small storefront. See Teams for the people behind it.")
		},
	}
}

// Teams is a child page of About.
func Teams() routes.Descriptor {
	return routes.Descriptor{
		ID:     "teams",
		Label:  "Teams",
		Order:  3,
		Parent: "about",
		Render: func() string {
			return titleStyle.Render("Teams") + "\n\n" +
				bodyStyle.Render("Catalog  ·  Fulfillment  ·  Support")
		},
	}
}

// Contact renders the contact page.
func Contact() routes.Descriptor {
	return routes.Descriptor{
		ID:    "contact",
		Label: "Contact",
		Order: 5,
		Render: func() string {
			return titleStyle.Render("Contact") + "\n\n" +
				bodyStyle.Render("hello@shopfront.example")
		},
	}
}
