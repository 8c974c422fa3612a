// Package catalog provides an ordered, validating implementation of the
// enigma.Catalog interface. Component wirings are checked as they are
// added, so a machine built on a catalog never sees a malformed wheel,
// and listings come back in insertion order rather than sorted.
package catalog
