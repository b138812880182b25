package launch

import (
	"os"

	"stagehand/internal/branch"
)

// Environment variables injected into every launcher command. The identity
// chain names the branch at each level; the _PATH variants carry the
// absolute directory for that level, with the task path pointing at the
// program's scene directory.
const (
	EnvShow         = "STAGEHAND_SHOW"
	EnvCategory     = "STAGEHAND_CATEGORY"
	EnvGroup        = "STAGEHAND_GROUP"
	EnvUnit         = "STAGEHAND_UNIT"
	EnvPart         = "STAGEHAND_PART"
	EnvTask         = "STAGEHAND_TASK"
	EnvProgram      = "STAGEHAND_PROGRAM"
	EnvVersion      = "STAGEHAND_VERSION"
	EnvScene        = "STAGEHAND_SCENE"
	EnvShowPath     = "STAGEHAND_SHOW_PATH"
	EnvCategoryPath = "STAGEHAND_CATEGORY_PATH"
	EnvGroupPath    = "STAGEHAND_GROUP_PATH"
	EnvUnitPath     = "STAGEHAND_UNIT_PATH"
	EnvPartPath     = "STAGEHAND_PART_PATH"
	EnvTaskPath     = "STAGEHAND_TASK_PATH"
)

type envPair struct {
	key   string
	value string
}

// environ extends the parent environment with the injected variables in a
// fixed order so repeated launches see identical environments.
func environ(task *branch.Task, version, scenePath string) []string {
	id := task.Identity()
	pairs := []envPair{
		{EnvShow, id.Show},
		{EnvCategory, id.Category},
		{EnvGroup, id.Group},
		{EnvUnit, id.Unit},
		{EnvPart, id.Part},
		{EnvTask, id.Task},
		{EnvProgram, task.Program()},
		{EnvVersion, version},
		{EnvScene, scenePath},
	}
	levels := []struct {
		kind branch.Kind
		key  string
	}{
		{branch.KindShow, EnvShowPath},
		{branch.KindCategory, EnvCategoryPath},
		{branch.KindGroup, EnvGroupPath},
		{branch.KindUnit, EnvUnitPath},
		{branch.KindPart, EnvPartPath},
		{branch.KindTask, EnvTaskPath},
	}
	for _, level := range levels {
		if node, ok := task.Ancestor(level.kind); ok {
			pairs = append(pairs, envPair{level.key, node.Path()})
		}
	}

	env := os.Environ()
	for _, pair := range pairs {
		env = append(env, pair.key+"="+pair.value)
	}
	return env
}
