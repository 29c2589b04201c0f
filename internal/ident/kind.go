package ident

import "reflect"

// KindName returns the package-qualified name of entity kind E, e.g.
// "phantom.Foo". Debug forms use it to say which kind an identifier names.
func KindName[E any]() string {
	return reflect.TypeFor[E]().String()
}
