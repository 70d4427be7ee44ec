// Package ports declares the interfaces the use cases need from infrastructure:
// repositories, the unit of work and the event publisher.
package ports
