package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/MuhammedQureshi/BarberPages/internal/booking"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// pageData is the precomputed view model for page.html. All branching
// (contact method, deep-link construction) happens here so the template
// stays logic-free.
type pageData struct {
	BusinessName string
	Description  string
	Services     []booking.Service
	Calendly     string
	Stripe       string
	ContactHref  string
	ContactLabel string
	Year         int
}

// Page renders the public booking page for p: hero, services with an
// optional per-service booking action, contact deep link, and an
// optional payment action.
func Page(p *booking.Page) templ.Component {
	data := pageData{
		BusinessName: p.BusinessName,
		Description:  p.Description,
		Services:     p.Services,
		Calendly:     p.Calendly,
		Stripe:       p.Stripe,
		Year:         time.Now().Year(),
	}

	if p.ContactMethod == booking.ContactWhatsApp {
		// wa.me accepts only the digit characters of a phone number.
		data.ContactHref = "https://wa.me/" + digitsOnly(p.ContactValue)
		data.ContactLabel = "Message on WhatsApp"
	} else {
		data.ContactHref = "mailto:" + p.ContactValue
		data.ContactLabel = "Email Us"
	}

	return render("page.html", data)
}

// NotFound renders the standard not-found page.
func NotFound() templ.Component {
	return render("notfound.html", pageData{Year: time.Now().Year()})
}

// Home renders the landing page.
func Home() templ.Component {
	return render("home.html", pageData{Year: time.Now().Year()})
}

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return templates.ExecuteTemplate(w, name, data)
	})
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}
