// Copyright 2021 The gcsx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package gcsx

import (
	"fmt"

	"github.com/gogama/gcsx/timeout"
)

// A StorageClass identifies the storage class of a bucket or object.
type StorageClass string

// Storage classes.
const (
	// StandardStorageClass is the default storage class, for
	// frequently accessed data.
	StandardStorageClass StorageClass = "STANDARD"
	// NearlineStorageClass is for data accessed less than once a
	// month.
	NearlineStorageClass StorageClass = "NEARLINE"
	// ColdlineStorageClass is for data accessed less than once a
	// quarter.
	ColdlineStorageClass StorageClass = "COLDLINE"
	// ArchiveStorageClass is for data accessed less than once a year.
	ArchiveStorageClass StorageClass = "ARCHIVE"

	// MultiRegionalLegacyStorageClass is a legacy class, equivalent to
	// STANDARD in a multi-region location.
	MultiRegionalLegacyStorageClass StorageClass = "MULTI_REGIONAL"
	// RegionalLegacyStorageClass is a legacy class, equivalent to
	// STANDARD in a region location.
	RegionalLegacyStorageClass StorageClass = "REGIONAL"
	// DurableReducedAvailabilityLegacyStorageClass is a legacy class
	// similar to NEARLINE.
	DurableReducedAvailabilityLegacyStorageClass StorageClass = "DURABLE_REDUCED_AVAILABILITY"
)

// A LocationType identifies the geographic layout of a bucket.
type LocationType string

// Location types.
const (
	// MultiRegionLocationType is a large area, such as the US.
	MultiRegionLocationType LocationType = "multi-region"
	// RegionLocationType is a specific geographic place.
	RegionLocationType LocationType = "region"
	// DualRegionLocationType is a specific pair of regions.
	DualRegionLocationType LocationType = "dual-region"
)

// DefaultTimeout is the per-attempt timeout used by a zero-value
// Client.
const DefaultTimeout = timeout.Default

var storageClasses = []StorageClass{
	StandardStorageClass,
	NearlineStorageClass,
	ColdlineStorageClass,
	ArchiveStorageClass,
	MultiRegionalLegacyStorageClass,
	RegionalLegacyStorageClass,
	DurableReducedAvailabilityLegacyStorageClass,
}

var locationTypes = []LocationType{
	MultiRegionLocationType,
	RegionLocationType,
	DualRegionLocationType,
}

// StorageClasses returns every known storage class, current classes
// first.
func StorageClasses() []StorageClass {
	s := make([]StorageClass, len(storageClasses))
	copy(s, storageClasses)
	return s
}

// LocationTypes returns every known location type.
func LocationTypes() []LocationType {
	l := make([]LocationType, len(locationTypes))
	copy(l, locationTypes)
	return l
}

// ParseStorageClass returns the storage class named by s. Matching is
// exact and case-sensitive.
func ParseStorageClass(s string) (StorageClass, error) {
	for _, c := range storageClasses {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("gcsx: unknown storage class %q", s)
}

// ParseLocationType returns the location type named by s. Matching is
// exact and case-sensitive.
func ParseLocationType(s string) (LocationType, error) {
	for _, l := range locationTypes {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("gcsx: unknown location type %q", s)
}

// Legacy reports whether c is one of the legacy storage classes.
func (c StorageClass) Legacy() bool {
	switch c {
	case MultiRegionalLegacyStorageClass, RegionalLegacyStorageClass, DurableReducedAvailabilityLegacyStorageClass:
		return true
	default:
		return false
	}
}

// Canonical returns the current storage class c is an alias of.
// MULTI_REGIONAL and REGIONAL map to STANDARD. Every other value,
// including DURABLE_REDUCED_AVAILABILITY, maps to itself.
func (c StorageClass) Canonical() StorageClass {
	switch c {
	case MultiRegionalLegacyStorageClass, RegionalLegacyStorageClass:
		return StandardStorageClass
	default:
		return c
	}
}

// CompatibleWith reports whether a bucket of location type l may use
// storage class c. MULTI_REGIONAL is only valid in a multi-region and
// REGIONAL only in a region. Unknown values are never compatible.
func (c StorageClass) CompatibleWith(l LocationType) bool {
	if !l.known() {
		return false
	}
	switch c {
	case MultiRegionalLegacyStorageClass:
		return l == MultiRegionLocationType
	case RegionalLegacyStorageClass:
		return l == RegionLocationType
	default:
		return c.known()
	}
}

func (c StorageClass) String() string {
	return string(c)
}

func (c StorageClass) known() bool {
	for _, x := range storageClasses {
		if x == c {
			return true
		}
	}
	return false
}

func (l LocationType) String() string {
	return string(l)
}

func (l LocationType) known() bool {
	for _, x := range locationTypes {
		if x == l {
			return true
		}
	}
	return false
}
