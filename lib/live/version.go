package live

import "fmt"

// VersionNum is the integer form reported by `SHOW server_version_num;`.
// Starting with 10.0, version X.Y is represented as X*10000 + Y.
type VersionNum int

func (self VersionNum) Major() int {
	return int(self) / 10000
}

func (self VersionNum) Minor() int {
	return int(self) % 10000
}

func (self VersionNum) String() string {
	return fmt.Sprintf("%d.%d", self.Major(), self.Minor())
}
