package internal

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/earthboundkid/versioninfo/v2"
)

var secretPattern = regexp.MustCompile(`(?i)(PASSWORD|API_KEY|ACCESS_KEY|SECRET|TOKEN)`)

// GitVersion logs the version control metadata embedded in the build.
func GitVersion() {
	log.Printf("raster-tools %s", versioninfo.Short())
}

// EnvironmentVars logs the process environment in sorted order, masking
// the value of any variable whose name suggests it holds a credential.
func EnvironmentVars() {
	environ := os.Environ()
	slices.Sort(environ)

	log.Println("Environment:")
	for _, entry := range environ {
		key, value, _ := strings.Cut(entry, "=")
		if secretPattern.MatchString(key) {
			value = "********"
		}
		log.Printf("  %s=%s", key, value)
	}
}

// UserInfo logs the identity the process runs as.
func UserInfo() {
	log.Printf("PID: %d", os.Getpid())

	if current, err := user.Current(); err != nil {
		log.Printf("Failed to look up current user: %v", err)
	} else {
		log.Printf("User: uid=%s(%s) gid=%s", current.Uid, current.Username, current.Gid)
	}

	gids, err := os.Getgroups()
	if err != nil {
		log.Printf("Failed to look up groups: %v", err)
		return
	}

	names := make([]string, 0, len(gids))
	for _, gid := range gids {
		if group, err := user.LookupGroupId(strconv.Itoa(gid)); err != nil {
			// Fall back to the raw ID when the name lookup fails
			names = append(names, strconv.Itoa(gid))
		} else {
			names = append(names, fmt.Sprintf("%s(%s)", group.Name, group.Gid))
		}
	}
	log.Printf("Groups: %s", strings.Join(names, ", "))
}
