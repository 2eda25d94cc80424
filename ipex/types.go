package ipex

// Route is an IPEX message's `r` discriminator: the `/ipex/...` path
// named in spec §4.9, stored as the full path including the `/ipex` prefix.
type Route string

const (
	RouteApply Route = "/ipex/apply"
	RouteOffer Route = "/ipex/offer"
	RouteAgree Route = "/ipex/agree"
	RouteGrant Route = "/ipex/grant"
	RouteAdmit Route = "/ipex/admit"
	RouteSpurn Route = "/ipex/spurn"
)

// canInitiate lists the routes that may start an exchange with no prior
// message (spec §4.9).
var canInitiate = map[Route]bool{
	RouteApply: true,
	RouteOffer: true,
	RouteGrant: true,
}

// allowedResponses is the legal prior-route -> response-route table (spec
// §4.9). Every route may also respond to its prior with spurn.
var allowedResponses = map[Route][]Route{
	RouteApply: {RouteOffer, RouteSpurn},
	RouteOffer: {RouteAgree, RouteSpurn},
	RouteAgree: {RouteGrant, RouteSpurn},
	RouteGrant: {RouteAdmit, RouteSpurn},
}

// RequiresPrior reports whether r must reference a predecessor message.
func RequiresPrior(r Route) bool {
	return !canInitiate[r]
}

// IsLegalResponse reports whether response is an allowed reply to prior.
func IsLegalResponse(prior, response Route) bool {
	for _, r := range allowedResponses[prior] {
		if r == response {
			return true
		}
	}
	return false
}
