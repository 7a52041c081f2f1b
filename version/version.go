package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/touchmpv/touchmpv/constant"
	"github.com/touchmpv/touchmpv/filesystem"
	"github.com/touchmpv/touchmpv/network"
	"github.com/touchmpv/touchmpv/util"
	"github.com/touchmpv/touchmpv/where"
)

// releasesURL points at the latest published release.
var releasesURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

// the cache path resolves where.Cache, which must not happen at package init
var versionCacher = sync.OnceValue(func() *gache.Cache[string] {
	return gache.New[string](&gache.Options{
		Path:       filepath.Join(where.Cache(), "version.json"),
		Lifetime:   time.Hour * 24 * 2,
		FileSystem: &filesystem.GacheFs{},
	})
})

// Latest returns the newest released version without the "v" prefix.
// Results are cached for two days.
func Latest() (string, error) {
	cached, expired, err := versionCacher().Get()
	if err == nil && !expired && cached != "" {
		return cached, nil
	}

	resp, err := network.Client.Get(releasesURL)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher().Set(latest)
	return latest, nil
}
