// Package textnorm canonicalizes free text into comparable tokens.
//
// Every matching operation in storecore is built on the same
// normalization: lower-case, strip everything outside [a-z0-9 ],
// collapse whitespace. Two pieces of text match when one normalized
// form contains the other as a contiguous substring, so "Gift-Box!"
// and "gift box" compare equal after normalization.
//
// All functions are total: nil-ish input is treated as the empty
// string and never fails.
package textnorm
