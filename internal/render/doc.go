// Package render is the display layer. It turns an agent.Result into
// something a person or another program reads: an arrow-joined path with a
// numbered step listing, an undirected Graphviz graph of the map with the walked path
// highlighted, or a JSON document.
//
// Renderers never influence a walk; they only read its Result and, for the
// DOT form, the map the walk ran on.
package render
