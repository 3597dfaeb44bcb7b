package core

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const defaultSnapshotConcurrency = 4

// FleetSnapshot lists the account's vehicles and fetches position and
// battery state for each one concurrently. Fails on the first classified
// error; runs remain bounded so a large fleet does not stampede the vendor.
func (c *Client) FleetSnapshot(ctx context.Context) ([]VehicleSnapshot, error) {
	vehicles, err := c.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return []VehicleSnapshot{}, nil
	}

	snapshots := make([]VehicleSnapshot, len(vehicles))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(defaultSnapshotConcurrency)

	for i, vehicle := range vehicles {
		group.Go(func() error {
			position, posErr := c.VehiclePosition(groupCtx, vehicle.SN)
			if posErr != nil {
				return posErr
			}
			battery, batErr := c.BatteryInfo(groupCtx, vehicle.SN)
			if batErr != nil {
				return batErr
			}
			snapshots[i] = VehicleSnapshot{
				Vehicle:  vehicle,
				Position: &position,
				Battery:  &battery,
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return snapshots, nil
}
