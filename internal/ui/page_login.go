package ui

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LoginPage renders the login form. errMsg is the generic failure
// message; it never distinguishes a missing username from a wrong
// password.
func LoginPage(errMsg string) Node {
	content := []Node{
		H2(Text("Login Page of ABC Portal")),
		Form(
			Method("post"),
			Action("/login"),
			Input(Type("text"), Name("username"), Placeholder("Username"), Required()),
			Input(Type("password"), Name("password"), Placeholder("Password"), Required()),
			Button(Type("submit"), Class("btn btn-primary"), Text("Login")),
		),
	}
	if errMsg != "" {
		content = append([]Node{P(Class("text-danger"), Text(errMsg))}, content...)
	}

	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			TitleEl(Text("Login | ABC Portal")),
			Link(Rel("stylesheet"), Href("https://maxcdn.bootstrapcdn.com/bootstrap/3.3.7/css/bootstrap.css")),
		),
		Body(
			Div(Class("container"), Group(content)),
		),
	)
}
