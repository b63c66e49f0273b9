// Package api exposes the study ledger to view components as a local
// JSON HTTP API. Rendering, navigation, and dialogs are the views'
// concern; this layer only maps HTTP onto the ledger contract.
package api

import (
	"github.com/lmei/wordflash/internal/ledger"
)

// Server bundles the handlers' dependencies.
type Server struct {
	Ledger *ledger.Ledger
}
