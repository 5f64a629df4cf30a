package hardware

import (
	"fmt"

	"github.com/chassis-vm/chassis/api/v1alpha1"
)

// Address is the two-dimensional coordinate at which a device attaches to
// a storage controller: the controller port and the device slot on that
// port, in VBoxManage --port/--device terms.
type Address struct {
	Port   uint
	Device uint
}

func (a Address) String() string {
	return fmt.Sprintf("port %d device %d", a.Port, a.Device)
}

// ideLayout is the fixed two-channel IDE topology: primary and secondary
// device slots across two ports. IDE controllers hold at most these four
// positions.
var ideLayout = [4]Address{
	{Port: 0, Device: 0},
	{Port: 1, Device: 0},
	{Port: 0, Device: 1},
	{Port: 1, Device: 1},
}

// Layout computes the attachment coordinate for each of count device bays
// on a controller of bus kind b, in ascending bay order.
//
// IDE uses the fixed four-position table above; more than four bays is an
// error. SATA, SCSI and SAS place bay i at port i, device 0, with any port
// count limit left to the platform. The formulas guarantee no two bays
// share a coordinate.
func Layout(b v1alpha1.BusKind, count int) ([]Address, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative device count %d", count)
	}
	switch b {
	case v1alpha1.BusIDE:
		if count > len(ideLayout) {
			return nil, fmt.Errorf("%w: %d requested", ErrTooManyIDEDevices, count)
		}
		addrs := make([]Address, count)
		copy(addrs, ideLayout[:count])
		return addrs, nil
	case v1alpha1.BusSATA, v1alpha1.BusSCSI, v1alpha1.BusSAS:
		addrs := make([]Address, count)
		for i := range addrs {
			addrs[i] = Address{Port: uint(i), Device: 0}
		}
		return addrs, nil
	default:
		return nil, fmt.Errorf("no placement policy for bus kind %q", b)
	}
}
