package sysversion

import (
	"context"
	"fmt"

	"github.com/fox-one/pkg/property"
)

const (
	// SysVersionKey property key holding the ledger schema version
	SysVersionKey = "sysversion"
)

// ReadSysVersion read the persisted ledger schema version
func ReadSysVersion(ctx context.Context, property property.Store) (int64, error) {
	v, err := property.Get(ctx, SysVersionKey)
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// ValidateSysVersion guard against running against a newer schema
func ValidateSysVersion(ctx context.Context, propertyStore property.Store, localVersion int64) error {
	sysversion, err := ReadSysVersion(ctx, propertyStore)
	if err != nil {
		return err
	}

	if localVersion < sysversion {
		return fmt.Errorf("sysversion outdated: local %d < %d", localVersion, sysversion)
	}

	return nil
}
