// Package mech resolves forces and kinematics for the half-Atwood
// machine: a cart on a table connected over a pulley to a hanging mass,
// with optional Coulomb friction.
//
// The two entry points mirror the two ways the apparatus is interrogated:
//
//   - [ResolveFromRest]: release from rest toward a target distance
//   - [ResolveDynamic]: instantaneous forces at a given signed velocity
//
// Both are total functions; invalid numeric inputs are clamped, never
// rejected. The [Mode] field tells callers which force fields are
// meaningful (e.g. Friction is the static balancing force only under
// [ModeStaticHold]).
package mech
