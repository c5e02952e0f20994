package ui

import (
	"strconv"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"
)

// portalPage wraps a protected surface in the shared chrome: header
// with the logged-in username and a logout link.
func portalPage(title, username string, body ...gomponents.Node) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | ABC Portal")),
			html.Link(html.Rel("stylesheet"), html.Href("https://maxcdn.bootstrapcdn.com/bootstrap/3.3.7/css/bootstrap.css")),
		),
		html.Body(
			html.Div(
				html.Class("container"),
				html.Div(
					html.Class("page-header clearfix"),
					html.H2(
						gomponents.Text("Welcome, "+username+" | "),
						html.A(html.Href("/logout"), gomponents.Text("Logout")),
					),
				),
				gomponents.Group(body),
			),
		),
	)
}

// ErrorPage renders a generic user-facing failure. The message must
// already be safe to show; diagnostic detail belongs in the logs.
func ErrorPage(title, message string) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.TitleEl(gomponents.Text(title+" | ABC Portal")),
			html.Link(html.Rel("stylesheet"), html.Href("https://maxcdn.bootstrapcdn.com/bootstrap/3.3.7/css/bootstrap.css")),
		),
		html.Body(
			html.Div(
				html.Class("container"),
				html.H2(gomponents.Text(title)),
				html.P(html.Class("lead"), gomponents.Text(message)),
				html.A(html.Href("/employees"), gomponents.Text("Back to listing")),
			),
		),
	)
}

func formatSalary(salary float64) string {
	return strconv.FormatFloat(salary, 'f', 2, 64)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
