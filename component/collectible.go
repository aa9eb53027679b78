package component

// CollectibleComponent marks a stick; Active sticks are drawn and can be picked up
type CollectibleComponent struct {
	Active bool
}
