package catalog

import (
	m "github.com/diffscope/fixturegen/internal/model"
)

// classHierarchy exercises class-level structure: a small inheritance tree
// gains an override and a new subclass method in the second stage.
func classHierarchy() m.Scenario {
	return m.Scenario{
		ID:        "class-hierarchy",
		Title:     "Class hierarchy changes",
		Kind:      m.ChangeHierarchy,
		Languages: []m.Language{m.LangPython, m.LangJava, m.LangTypeScript},
		Stages: []m.Stage{
			{
				Slug:    "baseline",
				Summary: "Add class hierarchy samples",
				Ops: []m.FileOp{
					write(m.LangPython, "class_hierarchy", pyHierarchyBefore),
					write(m.LangJava, "ClassHierarchy", javaHierarchyBefore),
					write(m.LangTypeScript, "class_hierarchy", tsHierarchyBefore),
				},
			},
			{
				Slug:    "extend-hierarchy",
				Summary: "Override a base method and add a subclass method",
				Ops: []m.FileOp{
					write(m.LangPython, "class_hierarchy", pyHierarchyAfter),
					write(m.LangJava, "ClassHierarchy", javaHierarchyAfter),
					write(m.LangTypeScript, "class_hierarchy", tsHierarchyAfter),
				},
			},
		},
	}
}

const pyHierarchyBefore = `"""Class hierarchy samples."""


class Entity:
    """Base class for all entities."""

    def __init__(self, id, name):
        self.id = id
        self.name = name
        self.tags = set()

    def add_tag(self, tag):
        """Add a tag to this entity."""
        self.tags.add(tag)

    def describe(self):
        """Return a short description."""
        return self.name


class Person(Entity):
    """An entity with an age."""

    def __init__(self, id, name, age):
        super().__init__(id, name)
        self.age = age
`

const pyHierarchyAfter = `"""Class hierarchy samples."""


class Entity:
    """Base class for all entities."""

    def __init__(self, id, name):
        self.id = id
        self.name = name
        self.tags = set()

    def add_tag(self, tag):
        """Add a tag to this entity."""
        self.tags.add(tag)

    def describe(self):
        """Return a short description."""
        return self.name


class Person(Entity):
    """An entity with an age."""

    def __init__(self, id, name, age):
        super().__init__(id, name)
        self.age = age

    def describe(self):
        """Return a short description including the age."""
        return self.name + " (" + str(self.age) + ")"

    def is_adult(self):
        """Check whether the person is an adult."""
        return self.age >= 18
`

const javaHierarchyBefore = `/**
 * Class hierarchy samples.
 */
public class ClassHierarchy {

    static class Entity {
        protected final String id;
        protected final String name;

        Entity(String id, String name) {
            this.id = id;
            this.name = name;
        }

        String describe() {
            return name;
        }
    }

    static class Person extends Entity {
        private final int age;

        Person(String id, String name, int age) {
            super(id, name);
            this.age = age;
        }
    }
}
`

const javaHierarchyAfter = `/**
 * Class hierarchy samples.
 */
public class ClassHierarchy {

    static class Entity {
        protected final String id;
        protected final String name;

        Entity(String id, String name) {
            this.id = id;
            this.name = name;
        }

        String describe() {
            return name;
        }
    }

    static class Person extends Entity {
        private final int age;

        Person(String id, String name, int age) {
            super(id, name);
            this.age = age;
        }

        @Override
        String describe() {
            return name + " (" + age + ")";
        }

        boolean isAdult() {
            return age >= 18;
        }
    }
}
`

const tsHierarchyBefore = `/**
 * Class hierarchy samples.
 */

export class Entity {
  readonly id: string;
  readonly name: string;

  constructor(id: string, name: string) {
    this.id = id;
    this.name = name;
  }

  describe(): string {
    return this.name;
  }
}

export class Person extends Entity {
  readonly age: number;

  constructor(id: string, name: string, age: number) {
    super(id, name);
    this.age = age;
  }
}
`

const tsHierarchyAfter = `/**
 * Class hierarchy samples.
 */

export class Entity {
  readonly id: string;
  readonly name: string;

  constructor(id: string, name: string) {
    this.id = id;
    this.name = name;
  }

  describe(): string {
    return this.name;
  }
}

export class Person extends Entity {
  readonly age: number;

  constructor(id: string, name: string, age: number) {
    super(id, name);
    this.age = age;
  }

  describe(): string {
    return this.name + ' (' + this.age + ')';
  }

  isAdult(): boolean {
    return this.age >= 18;
  }
}
`
