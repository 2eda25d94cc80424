// Package cose wraps veraison/go-cose to sign and verify the COSE_Sign1
// receipts witnesses and backers attach to KEL/TEL events, carrying the
// signing witness's AID and the receipted event's SAID in the protected
// header's DID and Feed claims.
package cose
