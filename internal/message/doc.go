// Package message defines the typed values exchanged with a Corrosion admin endpoint.
//
// Commands flow from the client to the endpoint; Responses flow back. Both are
// closed sets of variants encoded as externally tagged JSON: unit variants are
// bare strings ("ping", "success") and variants with data are single-key
// objects ({"locks":{"top":10}}, {"error":{"msg":"boom"}}).
//
// Use a type switch to dispatch on the concrete variant:
//
//	switch r := resp.(type) {
//	case *message.Log:
//	    // non-terminal
//	case *message.Data:
//	    // non-terminal
//	case *message.Error:
//	    // terminal failure
//	case *message.Success:
//	    // terminal success
//	}
package message
