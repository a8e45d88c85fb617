// Package devsink sends device-management messages to a syslog collector
// and normalizes device identifiers.
//
// Quick start:
//
//	c, err := devsink.New(devsink.WithTarget("loghost", 514))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = c.Send(ctx, "smart experiences policy applied")
//
// Messages go out as <priority>timestamp hostname message lines over UDP,
// or over TCP with RFC 6587 octet-counting or non-transparent framing.
// Each send dials its own connection; there is no pooling and no retry.
//
// Normalize canonicalizes the three accepted device-name spellings:
//
//	devsink.Normalize("cte123v12345") // "CTE-123-V12345", nil
package devsink
