// Package rhi describes the render hardware interface consumed by the resource pools and caches
// in this module.
//
// Concrete graphics backends implement Factory and the resource interfaces. Descriptor types are
// plain values: they are compared and hashed by the pooling layers and must not carry backend
// handles, with the exception of RenderSurfaceDesc which references the Texture it views.
package rhi

//go:generate mockgen -source factory.go -destination ./mocks/factory.go -package mock_rhi
//go:generate mockgen -source resource.go -destination ./mocks/resource.go -package mock_rhi
