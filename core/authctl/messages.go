package authctl

// Messages holds the two fixed pieces of error copy the controller shows.
// They are deliberately distinct so a user can tell "the server said no"
// from "the server could not be reached".
type Messages struct {
	// LoginFallback is shown for a server rejection that carried no error
	// text, and for malformed success responses.
	LoginFallback string
	// Connectivity is shown when the login request itself failed.
	Connectivity string
}

// DefaultMessages returns the product's zh-TW copy.
func DefaultMessages() Messages {
	return Messages{
		LoginFallback: "登入失敗，請稍後再試",
		Connectivity:  "無法連線至伺服器，請檢查網路後再試",
	}
}
