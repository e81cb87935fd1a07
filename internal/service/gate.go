package service

// Capability names the kind of resource an ownership decision is about.
type Capability string

const (
	CapabilityProduct     Capability = "product"
	CapabilityProductType Capability = "product-type"
)

// OwnershipGate decides whether an actor may mutate or delete a resource.
// Both capabilities share the same rule: the actor must own the resource.
// Callers resolve existence first, so the gate never sees a missing resource;
// an empty owner is still denied rather than treated as ownerless.
type OwnershipGate struct{}

func NewOwnershipGate() OwnershipGate {
	return OwnershipGate{}
}

func (OwnershipGate) Allows(_ Capability, ownerID string, actorID string) bool {
	return ownerID != "" && ownerID == actorID
}
