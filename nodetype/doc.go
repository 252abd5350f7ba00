// Package nodetype normalizes raw node type strings and maps them to
// the closed set of semantic categories the rule engine dispatches on.
//
// Normalization strips the platform package prefixes so rule sets and
// the tool registry key on short canonical names. Classification is a
// pure string mapping; anything outside the enumerated AI categories
// classifies as CategoryOther and receives no semantic rules.
package nodetype
