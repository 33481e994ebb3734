// Package cores places vertical-circulation cores along the corridor subject
// to the egress constraints: dead-end limits anchor the two end cores, exit
// separation is checked against the floor diagonal, and middle cores are
// inserted until the worst-case travel distance clears the limit or the core
// cap is reached.
package cores
